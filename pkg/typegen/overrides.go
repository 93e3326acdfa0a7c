package typegen

// overrides re-declares the navigation APIs of next/router and
// next/navigation so their path parameters accept RoutePath only.
const overrides = `
declare module 'next/router' {
  import type { NextRouter as OriginalNextRouter } from 'next/router';

  interface UrlObject {
    pathname: RoutePath;
  }

  interface NextRouter extends OriginalNextRouter {
    push(
      url: RoutePath | UrlObject,
      as?: string | UrlObject,
      options?: TransitionOptions,
    ): Promise<boolean>;
    replace(
      url: RoutePath | UrlObject,
      as?: string | UrlObject,
      options?: TransitionOptions,
    ): Promise<boolean>;
  }

  export function useRouter(): NextRouter;
}

declare module 'next/navigation' {
  interface NavigationRouter {
    push(href: RoutePath, options?: { scroll?: boolean }): void;
    replace(href: RoutePath, options?: { scroll?: boolean }): void;
    prefetch(href: RoutePath): void;
    back(): void;
    forward(): void;
    refresh(): void;
  }

  export function useRouter(): NavigationRouter;
  export function usePathname(): RoutePath;
  export function useSearchParams(): URLSearchParams;
}`

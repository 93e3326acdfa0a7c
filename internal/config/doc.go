// Package config provides configuration parsing for routegen projects.
//
// The configuration lives in routegen.json or routegen.yaml at the project
// root. Command-line arguments take precedence over it.
//
// # Configuration File Structure
//
//	{
//	  "dir": "src/app",
//	  "output": "types/routes.d.ts",
//	  "router": "app",
//	  "override": true,
//	  "exclude": ["api/**", "**/_*"],
//	  "extensions": [".tsx", ".js"]
//	}
//
// The same keys are used in YAML:
//
//	dir: src/pages
//	output: routes.d.ts
//	router: pages
//
// # Usage
//
// Files are read and written through a Store, which accepts local paths and
// afs storage URLs alike:
//
//	store := config.NewStore(nil)
//	cfg, err := store.LoadFromWorkingDir(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Routes:", cfg.DirPath())
package config

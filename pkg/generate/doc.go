// Package generate runs the route type generation pipeline: resolve the
// route directory and convention, walk it, emit the TypeScript document and
// write it to the output file.
//
//	res, err := generate.Run(ctx, generate.Options{
//	    Dir:        "src/app",
//	    Output:     "types/routes.d.ts",
//	    Convention: "app",
//	    Override:   true,
//	})
//
// With Options.Check nothing is written; Run fails with E104 when the output
// file does not match what would be generated.
package generate

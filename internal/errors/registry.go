package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://github.com/vango-dev/routegen/blob/main/docs/errors.md#"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Route Discovery Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryDirectory,
		Message:  "Invalid route directory",
		Detail:   "The route directory does not exist or is not a directory.",
		DocURL:   docBase + "e100",
	},
	"E101": {
		Category: CategoryFilesystem,
		Message:  "Failed to read route directory",
		Detail:   "A directory could not be listed while walking the route tree. No routes were generated.",
		DocURL:   docBase + "e101",
	},
	"E102": {
		Category: CategoryDirectory,
		Message:  "Cannot infer routing convention",
		Detail:   "The convention is inferred from the directory name, which must be 'pages' or 'app'.",
		DocURL:   docBase + "e102",
	},
	"E103": {
		Category: CategoryGenerate,
		Message:  "Unknown routing convention",
		Detail:   "The routing convention must be one of 'pages', 'app' or 'auto'.",
		DocURL:   docBase + "e103",
	},
	"E104": {
		Category: CategoryGenerate,
		Message:  "Generated route types are out of date",
		Detail:   "The output file differs from what the current route tree generates.",
		DocURL:   docBase + "e104",
	},
	"E105": {
		Category: CategoryFilesystem,
		Message:  "Failed to write route types",
		Detail:   "The output file could not be created or written.",
		DocURL:   docBase + "e105",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid routegen config",
		Detail:   "The routegen configuration file is malformed.",
		DocURL:   docBase + "e120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No routegen.json or routegen.yaml was found.",
		DocURL:   docBase + "e121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is not allowed.",
		DocURL:   docBase + "e122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid exclude pattern",
		Detail:   "An exclude pattern is not a valid glob.",
		DocURL:   docBase + "e123",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Missing argument",
		Detail:   "A required argument was not given on the command line or in the config file.",
		DocURL:   docBase + "e140",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Config file already exists",
		Detail:   "Refusing to overwrite an existing configuration file.",
		DocURL:   docBase + "e141",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Invalid command line",
		Detail:   "The command, its flags or its arguments could not be understood.",
		DocURL:   docBase + "e142",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

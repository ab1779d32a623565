package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config errors (E001-E019)

	"E001": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No strata.json was found in the working directory or any parent.",
	},
	"E002": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "strata.json could not be parsed as JSON.",
	},
	"E003": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has a value outside its allowed range.",
	},

	// Page generation errors (E020-E039)

	"E020": {
		Category: CategoryGen,
		Message:  "Page source unreadable",
		Detail:   "A page source file could not be read during normalization.",
	},
	"E021": {
		Category: CategoryGen,
		Message:  "Page source unwritable",
		Detail:   "A rewritten page source could not be written back to disk.",
	},
	"E022": {
		Category: CategoryGen,
		Message:  "Pages directory missing",
		Detail:   "The configured pages directory does not exist.",
	},

	// Runtime errors (E040-E059)

	"E040": {
		Category: CategoryRuntime,
		Message:  "Page render failed",
		Detail:   "A page or layout returned an error while rendering.",
	},
	"E041": {
		Category: CategoryRuntime,
		Message:  "Invalid request path",
		Detail:   "The request path failed validation before routing.",
	},

	// Export errors (E060-E079)

	"E060": {
		Category: CategoryExport,
		Message:  "Static export failed",
		Detail:   "A static route could not be rendered to the output directory.",
	},
	"E061": {
		Category: CategoryExport,
		Message:  "Upload failed",
		Detail:   "The exported site could not be uploaded to the target bucket.",
	},

	// CLI errors (E080-E099)

	"E080": {
		Category: CategoryCLI,
		Message:  "Application build or run failed",
		Detail:   "The project binary could not be built, started, or exited abnormally.",
	},
}

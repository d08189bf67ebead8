package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E001-E019)
	// ============================================

	"E001": {
		Category:   CategoryRender,
		Message:    "Render function panicked",
		Detail:     "A component's render function panicked during a reconciliation pass. The pass was abandoned and the container's retained tree is no longer consistent.",
		Suggestion: "Fix the panic inside the render function; the next Render call against this container starts from an empty tree.",
	},
	"E002": {
		Category:   CategoryRender,
		Message:    "Reentrant render on container",
		Detail:     "Render was called on a container while a reconciliation pass for that same container was still in progress, usually from inside a lifecycle hook.",
		Suggestion: "Never call Render from a lifecycle hook of an in-progress pass. Defer the update until the pass returns.",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Render called with nil container",
	},
	"E004": {
		Category: CategoryRender,
		Message:  "Render called with nil virtual node",
	},

	// ============================================
	// Hook Errors (E020-E029)
	// ============================================

	"E020": {
		Category:   CategoryHook,
		Message:    "Lifecycle hook panicked",
		Detail:     "A lifecycle hook (onMount, onUpdate, onRender, onUnmount, willEnter, didEnter, willLeave, didLeave) panicked. Later hooks in the same pass did not fire.",
		Suggestion: "Hooks run synchronously inside the reconciliation pass; keep them small and panic-free.",
	},

	// ============================================
	// Identity Errors (E030-E039)
	// ============================================

	"E030": {
		Category:   CategoryIdentity,
		Message:    "Duplicate sibling key",
		Detail:     "Two sibling nodes resolved to the same reconciliation key. The first occurrence wins; the duplicate is treated as unkeyed.",
		Suggestion: "Make keys unique among siblings, e.g. derive them from a stable record ID.",
	},

	// ============================================
	// Node Errors (E040-E049)
	// ============================================

	"E040": {
		Category:   CategoryNode,
		Message:    "Invalid element argument",
		Detail:     "El received an argument that is not an Attr, []Attr, *VNode, []*VNode, Component constructor result, or string.",
		Suggestion: "Check the arguments passed to the element builder; wrap raw values in Text or an Attr helper.",
	},
	"E041": {
		Category: CategoryNode,
		Message:  "Component constructed with nil render function",
	},

	// ============================================
	// Protocol Errors (E050-E059)
	// ============================================

	"E050": {
		Category: CategoryProtocol,
		Message:  "Frame payload too large",
	},
	"E051": {
		Category: CategoryProtocol,
		Message:  "Malformed frame header",
	},
	"E052": {
		Category: CategoryProtocol,
		Message:  "Truncated patch payload",
	},

	// ============================================
	// Config Errors (E060-E069)
	// ============================================

	"E060": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Run the command from a project directory containing loom.json, or pass --config.",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Configuration file is not valid JSON",
	},
	"E062": {
		Category: CategoryConfig,
		Message:  "Configuration failed validation",
	},

	// ============================================
	// Publish Errors (E070-E079)
	// ============================================

	"E070": {
		Category:   CategoryPublish,
		Message:    "Upload to bucket failed",
		Suggestion: "Check the bucket name, region, and credentials in loom.json.",
	},
	"E071": {
		Category: CategoryPublish,
		Message:  "Page failed to render for publishing",
	},
}

// Register adds a custom error template to the registry.
// Registered codes can then be used with New.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

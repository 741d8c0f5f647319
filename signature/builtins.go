package signature

// builtinGlobals lists ECMAScript and common host globals that are callable
// but have no introspectable declaration. Calls to these are never analyzed:
// their real signatures live in the engine, and a wrong removal would
// silently change behavior.
var builtinGlobals = map[string]bool{
	// ECMAScript
	"eval":               true,
	"isFinite":           true,
	"isNaN":              true,
	"parseFloat":         true,
	"parseInt":           true,
	"decodeURI":          true,
	"decodeURIComponent": true,
	"encodeURI":          true,
	"encodeURIComponent": true,
	"Array":              true,
	"ArrayBuffer":        true,
	"BigInt":             true,
	"Boolean":            true,
	"DataView":           true,
	"Date":               true,
	"Error":              true,
	"EvalError":          true,
	"Function":           true,
	"Map":                true,
	"Number":             true,
	"Object":             true,
	"Promise":            true,
	"Proxy":              true,
	"RangeError":         true,
	"ReferenceError":     true,
	"RegExp":             true,
	"Set":                true,
	"String":             true,
	"Symbol":             true,
	"SyntaxError":        true,
	"TypeError":          true,
	"URIError":           true,
	"WeakMap":            true,
	"WeakSet":            true,

	// Host environments (Node.js, browsers)
	"require":              true,
	"fetch":                true,
	"setTimeout":           true,
	"setInterval":          true,
	"setImmediate":         true,
	"clearTimeout":         true,
	"clearInterval":        true,
	"clearImmediate":       true,
	"queueMicrotask":       true,
	"structuredClone":      true,
	"atob":                 true,
	"btoa":                 true,
	"alert":                true,
	"confirm":              true,
	"prompt":               true,
	"URL":                  true,
	"URLSearchParams":      true,
	"TextEncoder":          true,
	"TextDecoder":          true,
	"AbortController":      true,
	"Event":                true,
	"CustomEvent":          true,
	"Worker":               true,
	"XMLHttpRequest":       true,
	"IntersectionObserver": true,
	"MutationObserver":     true,
	"ResizeObserver":       true,
}

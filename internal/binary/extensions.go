package binary

// binaryExtensions are file suffixes that always classify as binary,
// regardless of what the content sample would say.
var binaryExtensions = map[string]bool{
	// Executables and compiled objects
	".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".bin": true, ".o": true, ".a": true, ".obj": true,
	".com": true, ".msi": true, ".app": true,
	".class": true, ".pyc": true, ".pyo": true, ".wasm": true,

	// Images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".ico": true, ".bmp": true, ".webp": true, ".tiff": true,
	".psd": true, ".raw": true, ".heic": true,

	// SVG is XML but belongs with the images for prompt purposes.
	".svg": true,

	// Audio/Video
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true,
	".wav": true, ".flac": true, ".ogg": true, ".mkv": true,
	".wmv": true, ".m4a": true, ".aac": true,

	// Archives and packages
	".zip": true, ".tar": true, ".gz": true, ".rar": true,
	".7z": true, ".bz2": true, ".xz": true, ".iso": true,
	".deb": true, ".rpm": true, ".jar": true, ".whl": true,

	// Documents
	".pdf": true, ".doc": true, ".docx": true,
	".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
	".odt": true, ".ods": true, ".odp": true,

	// Fonts
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".otf": true,

	// Databases
	".db": true, ".sqlite": true, ".sqlite3": true,

	// Design/CAD
	".sketch": true, ".fig": true, ".dwg": true, ".dxf": true, ".blend": true,
}

// lockfileNames are dependency lockfiles excluded by basename. They decode
// as text but add thousands of generated lines to the output.
var lockfileNames = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"Cargo.lock":        true,
	"poetry.lock":       true,
	"Gemfile.lock":      true,
	"composer.lock":     true,
	"go.sum":            true,
}

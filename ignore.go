package main

import "strings"

// defaultIgnoreFolders are matched as substrings against directory paths.
// A directory whose path contains any of them is skipped with everything
// below it, so "build" also skips "subbuild".
var defaultIgnoreFolders = []string{
	".vscode", "misc", "assets", "android", ".turbo", "dist", "target",
	".yarn", "build", ".git", "svg", "icons", "node_modules", ".svelte-kit",
	".next", ".solid", ".nuxt", "pocketbase", "images", "fonts", "platforms",
	"App_Resources", "static",
}

// defaultIgnoreFiles are matched as substrings against full file paths.
var defaultIgnoreFiles = []string{
	".env", "ignore.json", ".yarnrc.yml", ".prettierignore", "app.d.ts",
	"todo.txt", "_path.txt", ".eslint.cjs", ".prettierrc", "count.py",
	".gitignore", "package-lock.json", "Cargo.lock", "Cargo.toml", "yarn.lock",
	"pnpm-lock.yaml", "package.json", "tsconfig.json", ".npmrc", "global.d.ts",
	"svelte.config.js", "tailwind.config.cjs", "postcss.config.cjs",
	"vite.config.ts", "stats.html", ".eslintcache", "README.md", "TODO.md",
	".eslintrc.cjs", ".deepsource.toml",
}

// IgnoreSet holds the folder and file markers excluded from a run.
// It is built once at startup and only read afterwards.
type IgnoreSet struct {
	Folders []string
	Files   []string
}

// defaultIgnoreSet returns the compiled-in markers.
func defaultIgnoreSet() IgnoreSet {
	return IgnoreSet{
		Folders: append([]string(nil), defaultIgnoreFolders...),
		Files:   append([]string(nil), defaultIgnoreFiles...),
	}
}

// SkipFolder reports whether path contains any folder marker.
func (s IgnoreSet) SkipFolder(path string) bool {
	return containsAny(path, s.Folders)
}

// SkipFile reports whether path contains any file marker.
func (s IgnoreSet) SkipFile(path string) bool {
	return containsAny(path, s.Files)
}

func containsAny(path string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

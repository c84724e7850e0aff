package icons

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Category groups entries that share a color in the listing.
type Category int

const (
	Default Category = iota
	Directory
	Image
	Video
	Audio
	Archive
	Code
	Text
	Config
	Executable
	Git
)

var categoryNames = map[Category]string{
	Default:    "default",
	Directory:  "directory",
	Image:      "image",
	Video:      "video",
	Audio:      "audio",
	Archive:    "archive",
	Code:       "code",
	Text:       "text",
	Config:     "config",
	Executable: "executable",
	Git:        "git",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "default"
}

// Color is the ANSI color the glyph is drawn in. Default has no color.
func (c Category) Color() lipgloss.TerminalColor {
	switch c {
	case Directory:
		return lipgloss.ANSIColor(4) // blue
	case Image:
		return lipgloss.ANSIColor(5) // magenta
	case Video:
		return lipgloss.ANSIColor(6) // cyan
	case Audio, Config:
		return lipgloss.ANSIColor(3) // yellow
	case Archive, Git:
		return lipgloss.ANSIColor(1) // red
	case Code, Executable:
		return lipgloss.ANSIColor(2) // green
	case Text:
		return lipgloss.ANSIColor(7) // white
	default:
		return lipgloss.NoColor{}
	}
}

// Info is how an entry is presented: a Nerd Font glyph and its category.
type Info struct {
	Glyph    string
	Category Category
}

var (
	directoryInfo  = Info{" ", Directory}
	defaultInfo    = Info{"󰈔 ", Default}
	cInfo          = Info{" ", Code}
	cppInfo        = Info{" ", Code}
	pythonInfo     = Info{" ", Code}
	javascriptInfo = Info{"󰌞 ", Code}
	typescriptInfo = Info{"󰌠 ", Code}
	htmlInfo       = Info{"󰌝 ", Code}
	cssInfo        = Info{"󰌛 ", Code}
	goInfo         = Info{" ", Code}
	jsonInfo       = Info{"󰘦 ", Config}
	markdownInfo   = Info{"󰍔 ", Text}
	imageInfo      = Info{"󰈟 ", Image}
	audioInfo      = Info{"󰎈 ", Audio}
	videoInfo      = Info{"󰈫 ", Video}
	archiveInfo    = Info{"󰀼 ", Archive}
	pdfInfo        = Info{"󰈦 ", Text}
	textInfo       = Info{"󰈙 ", Text}
	gitInfo        = Info{"󰊢 ", Git}
	makefileInfo   = Info{"󰆍 ", Config}
	shellInfo      = Info{" ", Code}
	licenseInfo    = Info{"󰿃 ", Text}
	headerInfo     = Info{"󰘦 ", Code}
	objectInfo     = Info{"󰆍 ", Config}
	executableInfo = Info{" ", Executable}
)

// Matched against the lowercased name before the extension is considered.
var exactNames = map[string]Info{
	"makefile": makefileInfo,
	"license":  licenseInfo,
	"readme":   markdownInfo,
	".git":     gitInfo,
}

var extensions = map[string]Info{
	"c": cInfo, "h": headerInfo, "hpp": headerInfo, "hxx": headerInfo,
	"cpp": cppInfo, "cxx": cppInfo, "cc": cppInfo,
	"py": pythonInfo, "go": goInfo,
	"js": javascriptInfo, "jsx": javascriptInfo,
	"ts": typescriptInfo, "tsx": typescriptInfo,
	"html": htmlInfo, "htm": htmlInfo,
	"css": cssInfo, "sass": cssInfo, "scss": cssInfo,
	"json": jsonInfo, "cfg": jsonInfo, "conf": jsonInfo, "ini": jsonInfo,
	"yaml": jsonInfo, "yml": jsonInfo, "toml": jsonInfo,
	"md": markdownInfo, "markdown": markdownInfo,
	"txt": textInfo, "log": textInfo,
	"pdf": pdfInfo,
	"png": imageInfo, "jpg": imageInfo, "jpeg": imageInfo, "gif": imageInfo,
	"bmp": imageInfo, "tiff": imageInfo, "webp": imageInfo, "svg": imageInfo,
	"ico": imageInfo,
	"mp3": audioInfo, "wav": audioInfo, "ogg": audioInfo, "flac": audioInfo,
	"aac": audioInfo, "m4a": audioInfo, "opus": audioInfo,
	"mp4": videoInfo, "mkv": videoInfo, "mov": videoInfo, "avi": videoInfo,
	"webm": videoInfo, "wmv": videoInfo, "flv": videoInfo,
	"zip": archiveInfo, "rar": archiveInfo, "7z": archiveInfo, "tar": archiveInfo,
	"gz": archiveInfo, "bz2": archiveInfo, "xz": archiveInfo, "zst": archiveInfo,
	"deb": archiveInfo, "rpm": archiveInfo, "iso": archiveInfo, "img": archiveInfo,
	"sh": shellInfo, "bash": shellInfo, "zsh": shellInfo, "fish": shellInfo,
	"bat": shellInfo, "ps1": shellInfo,
	"o": objectInfo, "so": objectInfo, "a": objectInfo, "lib": objectInfo,
	"dll": objectInfo,
	"exe": executableInfo,
}

// Scripts keep their extension icon even when executable.
var scriptExtensions = map[string]bool{
	"sh": true, "bash": true, "zsh": true, "fish": true,
	"py": true, "rb": true, "pl": true,
}

// Extension returns the lowercased extension of name without the dot.
// Dotfiles like ".bashrc" and names ending in a dot have none.
func Extension(name string) string {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 || dot == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[dot+1:])
}

// Classify picks the glyph and category for an entry from its name alone.
func Classify(name string, isDir bool) Info {
	if isDir {
		if name == ".git" {
			return gitInfo
		}
		return directoryInfo
	}

	lower := strings.ToLower(name)
	if info, ok := exactNames[lower]; ok {
		return info
	}

	// Dotfiles without a second dot, e.g. .bashrc
	if len(name) > 1 && name[0] == '.' && !strings.Contains(name[1:], ".") {
		if info, ok := exactNames[lower[1:]]; ok {
			return info
		}
		switch lower {
		case ".gitignore", ".gitattributes", ".gitmodules":
			return gitInfo
		case ".bashrc", ".zshrc", ".profile":
			return shellInfo
		case ".config", ".local", ".cache":
			return directoryInfo
		}
		return jsonInfo
	}

	if info, ok := extensions[Extension(name)]; ok {
		return info
	}
	return defaultInfo
}

// ClassifyPath is Classify plus the executable bit check for unmapped files
// inside dir.
func ClassifyPath(dir, name string, isDir bool) Info {
	info := Classify(name, isDir)
	if isDir || info != defaultInfo {
		return info
	}
	if scriptExtensions[Extension(name)] {
		return info
	}
	st, err := os.Stat(filepath.Join(dir, name))
	if err == nil && st.Mode().IsRegular() && st.Mode().Perm()&0111 != 0 {
		return executableInfo
	}
	return info
}

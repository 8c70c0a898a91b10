package dataset

import "github.com/archpkg/pkgserve/pkg/pkgindex"

// Builtin returns the compiled-in package dataset. It keeps the binary
// useful before any backend adapter has written a dataset file, and it is
// what the interactive mode searches out of the box.
func Builtin() []pkgindex.PackageEntry {
	return []pkgindex.PackageEntry{
		// video and streaming
		{Name: "kdenlive", Description: "Professional video editor", Source: pkgindex.SourcePacman},
		{Name: "shotcut", Description: "Free open-source video editor", Source: pkgindex.SourcePacman},
		{Name: "openshot", Description: "Simple video editor", Source: pkgindex.SourcePacman},
		{Name: "obs-studio", Description: "Live streaming and recording software", Source: pkgindex.SourcePacman},
		{Name: "davinci-resolve", Description: "Professional video editing software", Source: pkgindex.SourceAUR},
		{Name: "blender", Description: "3D creation suite", Source: pkgindex.SourcePacman},

		// office
		{Name: "libreoffice-fresh", Description: "Complete office suite", Source: pkgindex.SourcePacman},
		{Name: "onlyoffice-bin", Description: "Office suite with online collaboration", Source: pkgindex.SourceAUR},
		{Name: "wps-office", Description: "WPS Office suite", Source: pkgindex.SourceAUR},
		{Name: "calligra", Description: "KDE office suite", Source: pkgindex.SourcePacman},

		// audio
		{Name: "audacity", Description: "Audio editor and recorder", Source: pkgindex.SourcePacman},
		{Name: "vlc", Description: "Media player", Source: pkgindex.SourcePacman},
		{Name: "lmms", Description: "Digital audio workstation", Source: pkgindex.SourcePacman},
		{Name: "ardour", Description: "Digital audio workstation", Source: pkgindex.SourcePacman},
		{Name: "musescore", Description: "Music notation software", Source: pkgindex.SourcePacman},
		{Name: "spotify", Description: "Music streaming service", Source: pkgindex.SourceAUR},

		// editors and IDEs
		{Name: "visual-studio-code", Description: "Code editor by Microsoft", Source: pkgindex.SourceAUR},
		{Name: "vscodium", Description: "Community build of the VS Code editor", Source: pkgindex.SourceAUR},
		{Name: "neovim", Description: "Vim-based text editor", Source: pkgindex.SourcePacman},
		{Name: "intellij-idea-community", Description: "Java IDE", Source: pkgindex.SourcePacman},
		{Name: "android-studio", Description: "Android development IDE", Source: pkgindex.SourceAUR},
		{Name: "sublime-text", Description: "Text editor", Source: pkgindex.SourceAUR},
		{Name: "qtcreator", Description: "Qt development IDE", Source: pkgindex.SourcePacman},
		{Name: "vim", Description: "Text editor", Source: pkgindex.SourcePacman},
		{Name: "emacs", Description: "Text editor", Source: pkgindex.SourcePacman},
		{Name: "nano", Description: "Text editor", Source: pkgindex.SourcePacman},
		{Name: "micro", Description: "Text editor", Source: pkgindex.SourcePacman},
		{Name: "kate", Description: "Text editor", Source: pkgindex.SourcePacman},

		// graphics
		{Name: "gimp", Description: "Image editor", Source: pkgindex.SourcePacman},
		{Name: "inkscape", Description: "Vector graphics editor", Source: pkgindex.SourcePacman},
		{Name: "krita", Description: "Digital painting application", Source: pkgindex.SourcePacman},
		{Name: "darktable", Description: "Photo workflow application", Source: pkgindex.SourcePacman},
		{Name: "rawtherapee", Description: "Raw photo processor", Source: pkgindex.SourcePacman},

		// gaming
		{Name: "steam", Description: "Gaming platform", Source: pkgindex.SourcePacman},
		{Name: "lutris", Description: "Gaming platform", Source: pkgindex.SourcePacman},
		{Name: "wine", Description: "Windows compatibility layer", Source: pkgindex.SourcePacman},
		{Name: "retroarch", Description: "Retro gaming emulator", Source: pkgindex.SourcePacman},

		// browsers
		{Name: "firefox", Description: "Web browser", Source: pkgindex.SourcePacman},
		{Name: "chromium", Description: "Web browser", Source: pkgindex.SourcePacman},
		{Name: "google-chrome", Description: "Web browser", Source: pkgindex.SourceAUR},
		{Name: "brave-bin", Description: "Privacy-focused browser", Source: pkgindex.SourceAUR},
		{Name: "vivaldi", Description: "Web browser", Source: pkgindex.SourceAUR},

		// communication
		{Name: "discord", Description: "Voice and text chat", Source: pkgindex.SourceAUR},
		{Name: "telegram-desktop", Description: "Messaging app", Source: pkgindex.SourcePacman},
		{Name: "signal-desktop", Description: "Secure messaging", Source: pkgindex.SourceAUR},
		{Name: "slack-desktop", Description: "Team communication", Source: pkgindex.SourceAUR},
		{Name: "zoom", Description: "Video conferencing", Source: pkgindex.SourceAUR},

		// development
		{Name: "git", Description: "Version control system", Source: pkgindex.SourcePacman},
		{Name: "docker", Description: "Container platform", Source: pkgindex.SourcePacman},
		{Name: "docker-compose", Description: "Docker orchestration", Source: pkgindex.SourcePacman},
		{Name: "nodejs", Description: "JavaScript runtime", Source: pkgindex.SourcePacman},
		{Name: "python", Description: "Python interpreter", Source: pkgindex.SourcePacman},
		{Name: "python-pip", Description: "Python package installer", Source: pkgindex.SourcePacman},
		{Name: "go", Description: "Go programming language", Source: pkgindex.SourcePacman},
		{Name: "rust", Description: "Rust programming language", Source: pkgindex.SourcePacman},
		{Name: "gcc", Description: "GNU compiler collection", Source: pkgindex.SourcePacman},

		// system
		{Name: "htop", Description: "Interactive process viewer", Source: pkgindex.SourcePacman},
		{Name: "neofetch", Description: "System information tool", Source: pkgindex.SourcePacman},
		{Name: "timeshift", Description: "System restore tool", Source: pkgindex.SourceAUR},
		{Name: "gparted", Description: "Disk partitioning tool", Source: pkgindex.SourcePacman},

		// media
		{Name: "mpv", Description: "Media player", Source: pkgindex.SourcePacman},
		{Name: "smplayer", Description: "Media player", Source: pkgindex.SourcePacman},
		{Name: "rhythmbox", Description: "Music player", Source: pkgindex.SourcePacman},

		// utilities
		{Name: "curl", Description: "Data transfer tool", Source: pkgindex.SourcePacman},
		{Name: "wget", Description: "File downloader", Source: pkgindex.SourcePacman},
		{Name: "rsync", Description: "File synchronization", Source: pkgindex.SourcePacman},
		{Name: "tree", Description: "Directory tree viewer", Source: pkgindex.SourcePacman},
		{Name: "bat", Description: "Cat clone with syntax highlighting", Source: pkgindex.SourcePacman},
	}
}

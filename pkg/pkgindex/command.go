package pkgindex

import "fmt"

// InstallCommand returns the shell command that installs the package from
// its primary source. The CLI layer prints this as a hint next to results;
// nothing here executes anything.
func InstallCommand(entry PackageEntry) string {
	switch entry.Source {
	case SourcePacman:
		return fmt.Sprintf("sudo pacman -S %s", entry.Name)
	case SourceAUR:
		return fmt.Sprintf("yay -S %s", entry.Name)
	case SourceFlatpak:
		return fmt.Sprintf("flatpak install flathub %s", entry.Name)
	case SourceSnap:
		return fmt.Sprintf("sudo snap install %s", entry.Name)
	case SourceAPT:
		return fmt.Sprintf("sudo apt install %s", entry.Name)
	case SourceDNF:
		return fmt.Sprintf("sudo dnf install %s", entry.Name)
	default:
		return ""
	}
}

// RemoveCommand returns the shell command that removes the package.
func RemoveCommand(entry PackageEntry) string {
	switch entry.Source {
	case SourcePacman:
		return fmt.Sprintf("sudo pacman -R %s", entry.Name)
	case SourceAUR:
		return fmt.Sprintf("yay -R %s", entry.Name)
	case SourceFlatpak:
		return fmt.Sprintf("flatpak uninstall %s", entry.Name)
	case SourceSnap:
		return fmt.Sprintf("sudo snap remove %s", entry.Name)
	case SourceAPT:
		return fmt.Sprintf("sudo apt remove %s", entry.Name)
	case SourceDNF:
		return fmt.Sprintf("sudo dnf remove %s", entry.Name)
	default:
		return ""
	}
}

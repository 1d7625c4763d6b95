package health

import (
	"io/fs"
	"os"
)

// InContainer returns true if the program runs in a Docker
// or Podman container.
func InContainer() (ok bool) {
	return inContainer(os.Stat)
}

func inContainer(stat func(name string) (fs.FileInfo, error)) (ok bool) {
	for _, marker := range [...]string{"/.dockerenv", "/run/.containerenv"} {
		_, err := stat(marker)
		if err == nil {
			return true
		}
	}
	return false
}

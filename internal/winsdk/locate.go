package winsdk

import (
	"os"
	"path/filepath"

	"github.com/heaths/go-vssetup"
)

// LocateInstallation looks for a Windows 10/11 SDK root: the standalone
// Windows Kits layout first, then SDKs bundled under a Visual Studio
// installation.
func (Host) LocateInstallation() (string, bool, error) {
	if root := kitsRoot(); dirExists(root) {
		return root, true, nil
	}

	instances, err := vssetup.Instances(false)
	if err != nil {
		return "", false, err
	}
	for _, instance := range instances {
		path, err := instance.InstallationPath()
		instance.Close()
		if err != nil {
			continue
		}
		if kits := filepath.Join(path, "Windows Kits", "10"); dirExists(kits) {
			return kits, true, nil
		}
	}

	return "", false, nil
}

func kitsRoot() string {
	pf := os.Getenv("ProgramFiles(x86)")
	if pf == "" {
		pf = `C:\Program Files (x86)`
	}
	return filepath.Join(pf, "Windows Kits", "10")
}

func dirExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}

// Package launcher opens URLs with the platform's default handler. It is
// the final hop that hands the things:/// URL to the Things app.
package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the URL with the platform opener. The opener inherits no
// stdio; failures surface through the returned error only.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launcher: open %q: %w", url, err)
	}
	return nil
}

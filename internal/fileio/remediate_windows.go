//go:build windows

package fileio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// builtinUsersSID is the well-known SID of the local Users group.
const builtinUsersSID = "*S-1-5-32-545"

// Remediate clears the read-only attribute of path (or of its directory when
// the file does not exist yet) and resets its ACL. When the reset is denied
// it asks for elevation to grant the Users group full control.
func Remediate(path string) error {
	target := path
	if _, err := os.Stat(path); err != nil {
		target = filepath.Dir(path)
	}

	if err := clearReadOnly(target); err != nil {
		return err
	}

	output, err := newCommand("icacls", target, "/reset").CombinedOutput()
	if err == nil {
		return nil
	}

	if elevErr := runElevated("icacls", target, "/grant", builtinUsersSID+":F"); elevErr != nil {
		return fmt.Errorf("icacls /reset failed: %w (%s); elevation failed: %v", err, strings.TrimSpace(string(output)), elevErr)
	}
	return nil
}

func clearReadOnly(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return fmt.Errorf("failed to read attributes of %s: %w", path, err)
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY == 0 {
		return nil
	}
	if err := windows.SetFileAttributes(p, attrs&^windows.FILE_ATTRIBUTE_READONLY); err != nil {
		return fmt.Errorf("failed to clear read-only flag on %s: %w", path, err)
	}
	return nil
}

// runElevated runs exe through a UAC prompt and waits for it to exit. A
// declined prompt or a non-zero exit code is an error.
func runElevated(exe string, args ...string) error {
	output, err := newCommand("powershell", "-NoProfile", "-NonInteractive", "-Command", elevatedScript(exe, args...)).CombinedOutput()
	if err != nil {
		return fmt.Errorf("elevated %s failed: %w (%s)", exe, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// elevatedScript builds the PowerShell command starting exe as administrator.
// The exit code of exe becomes the exit code of PowerShell.
func elevatedScript(exe string, args ...string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		// A trailing backslash would escape the closing quote.
		if strings.HasSuffix(a, `\`) {
			a += `\`
		}
		quoted[i] = psQuote(`"` + a + `"`)
	}
	return fmt.Sprintf("$p = Start-Process -FilePath %s -ArgumentList %s -Verb RunAs -WindowStyle Hidden -Wait -PassThru; exit $p.ExitCode",
		psQuote(exe), strings.Join(quoted, ","))
}

// psQuote wraps s in a single quoted PowerShell literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func newCommand(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true, CreationFlags: windows.CREATE_NO_WINDOW}
	return cmd
}

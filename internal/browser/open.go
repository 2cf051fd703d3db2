package browser

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Browser represents a web browser type
type Browser int

const (
	BrowserUnknown Browser = iota
	BrowserChrome
	BrowserFirefox
	BrowserSafari
	BrowserEdge
	BrowserDefault // system default handler
)

var browserNames = map[Browser]string{
	BrowserChrome:  "Chrome",
	BrowserFirefox: "Firefox",
	BrowserSafari:  "Safari",
	BrowserEdge:    "Edge",
	BrowserDefault: "Default",
}

func (b Browser) String() string {
	if name, ok := browserNames[b]; ok {
		return name
	}
	return "Unknown"
}

// AllBrowsers returns all available browser options (for settings UI)
func AllBrowsers() []Browser {
	return []Browser{BrowserDefault, BrowserChrome, BrowserFirefox, BrowserSafari, BrowserEdge}
}

// ParseBrowser converts a string to Browser type
func ParseBrowser(s string) Browser {
	for b, name := range browserNames {
		if strings.EqualFold(name, s) {
			return b
		}
	}
	return BrowserDefault
}

// preferredBrowser stores the user's browser preference (default: system handler)
var preferredBrowser = BrowserDefault

// SetPreferredBrowser sets the preferred browser
func SetPreferredBrowser(b Browser) {
	preferredBrowser = b
}

// GetPreferredBrowser returns the current preferred browser
func GetPreferredBrowser() Browser {
	return preferredBrowser
}

// DetectBrowser inspects the BROWSER environment variable, the conventional
// override honored by xdg-open and friends
func DetectBrowser() Browser {
	browserEnv := os.Getenv("BROWSER")

	switch {
	case browserEnv == "":
		return BrowserDefault
	case strings.Contains(strings.ToLower(browserEnv), "chrome"):
		return BrowserChrome
	case strings.Contains(strings.ToLower(browserEnv), "firefox"):
		return BrowserFirefox
	case strings.Contains(strings.ToLower(browserEnv), "safari"):
		return BrowserSafari
	case strings.Contains(strings.ToLower(browserEnv), "edge"):
		return BrowserEdge
	}

	return BrowserDefault
}

// GetEffectiveBrowser returns the browser to use (preferred or auto-detected)
func GetEffectiveBrowser() Browser {
	if preferredBrowser != BrowserDefault {
		return preferredBrowser
	}
	return DetectBrowser()
}

// OpenURL navigates to rawURL in the effective browser. The launch is
// one-way: tubedeck does not track the spawned process or retry on failure.
func OpenURL(rawURL string) error {
	b := GetEffectiveBrowser()

	if b == BrowserDefault || b == BrowserUnknown {
		return openWithDefault(rawURL)
	}

	name, ok := commandFor(b)
	if !ok {
		// No launcher for this browser on this platform (e.g. Safari on
		// linux); fall back to the system handler
		return openWithDefault(rawURL)
	}

	if runtime.GOOS == "darwin" {
		return run("open", "-a", name, rawURL)
	}
	if err := run(name, rawURL); err != nil {
		return openWithDefault(rawURL)
	}
	return nil
}

// commandFor returns the launch target for a specific browser on the current
// platform: an application name on darwin, an executable name elsewhere
func commandFor(b Browser) (string, bool) {
	switch runtime.GOOS {
	case "darwin":
		switch b {
		case BrowserChrome:
			return "Google Chrome", true
		case BrowserFirefox:
			return "Firefox", true
		case BrowserSafari:
			return "Safari", true
		case BrowserEdge:
			return "Microsoft Edge", true
		}
	case "windows":
		switch b {
		case BrowserChrome:
			return "chrome", true
		case BrowserFirefox:
			return "firefox", true
		case BrowserEdge:
			return "msedge", true
		}
	default:
		switch b {
		case BrowserChrome:
			return "google-chrome", true
		case BrowserFirefox:
			return "firefox", true
		case BrowserEdge:
			return "microsoft-edge", true
		}
	}
	return "", false
}

// openWithDefault hands the URL to the platform's default handler
func openWithDefault(rawURL string) error {
	switch runtime.GOOS {
	case "darwin":
		return run("open", rawURL)
	case "windows":
		return run("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		// xdg-open is near-universal on desktop linux; the Debian-style
		// wrappers cover the rest
		for _, opener := range []string{"xdg-open", "sensible-browser", "x-www-browser"} {
			if _, err := exec.LookPath(opener); err == nil {
				return run(opener, rawURL)
			}
		}
		return fmt.Errorf("no URL opener found (tried xdg-open, sensible-browser, x-www-browser)")
	}
}

// run executes a launcher command, folding its output into the error
func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %v, output: %s", name, err, output)
	}
	return nil
}

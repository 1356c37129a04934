package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

const releaseRepo = "gomagick/gomagick"

// semverRe finds a semver substring like v1.2.3 or 1.2.3 inside a tag
// or release name.
var semverRe = regexp.MustCompile(`v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?`)

// detectLatestRelease queries the GitHub Releases API directly rather
// than through selfupdate.DetectLatest, which rejects tags that are not
// exact semver. Draft and prerelease entries are skipped; the highest
// published semver wins. Returns (nil, false, nil) when no suitable
// release exists.
func detectLatestRelease(repo string) (*selfupdate.Release, bool, error) {
	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/releases", repo)
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(apiURL)
	if err != nil {
		return nil, false, fmt.Errorf("github API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, false, fmt.Errorf("github API returned status %d: %s", resp.StatusCode, string(body))
	}

	var releases []struct {
		TagName    string `json:"tag_name"`
		Name       string `json:"name"`
		Draft      bool   `json:"draft"`
		Prerelease bool   `json:"prerelease"`
		Assets     []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, false, fmt.Errorf("failed to decode github releases: %w", err)
	}

	type candidate struct {
		ver      semver.Version
		assetURL string
	}
	var candidates []candidate

	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		match := semverRe.FindString(r.TagName)
		if match == "" {
			match = semverRe.FindString(r.Name)
			if match == "" {
				continue
			}
		}
		v, perr := semver.Parse(strings.TrimPrefix(match, "v"))
		if perr != nil {
			continue
		}
		candidates = append(candidates, candidate{ver: v, assetURL: pickAsset(r.Assets)})
	}

	if len(candidates) == 0 {
		return nil, false, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ver.GT(candidates[j].ver)
	})
	best := candidates[0]
	return &selfupdate.Release{Version: best.ver, AssetURL: best.assetURL}, true, nil
}

// pickAsset prefers a binary built for the running platform, then any
// asset at all.
func pickAsset(assets []struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}) string {
	fallback := ""
	for _, a := range assets {
		name := strings.ToLower(a.Name)
		if strings.Contains(name, runtime.GOOS) && strings.Contains(name, runtime.GOARCH) {
			return a.BrowserDownloadURL
		}
		if fallback == "" {
			fallback = a.BrowserDownloadURL
		}
	}
	return fallback
}

// CheckForUpdates reports whether a newer release exists. The check is
// notify-only; with GOMAGICK_SELF_UPDATE=1 the running binary is
// replaced in place. A batch tool cannot prompt, so there is no
// interactive confirmation.
func CheckForUpdates(out io.Writer) error {
	latest, found, err := detectLatestRelease(releaseRepo)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if !found {
		fmt.Fprintf(out, "No releases found for %s.\n", releaseRepo)
		return nil
	}

	current, perr := semver.Parse(Version)
	if perr != nil {
		return fmt.Errorf("could not parse current version %q: %w", Version, perr)
	}
	if !latest.Version.GT(current) {
		fmt.Fprintf(out, "gomagick %s is up to date.\n", current)
		return nil
	}

	if os.Getenv("GOMAGICK_SELF_UPDATE") != "1" {
		fmt.Fprintf(out, "A new version (%s) is available; current is %s.\n", latest.Version, current)
		fmt.Fprintf(out, "Set GOMAGICK_SELF_UPDATE=1 to update in place, or visit %s/releases.\n", projectURL)
		return nil
	}

	if latest.AssetURL == "" {
		fmt.Fprintf(out, "A new version (%s) is available but has no downloadable asset.\n", latest.Version)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Fprintf(out, "Updated to version %s.\n", latest.Version)
	return nil
}

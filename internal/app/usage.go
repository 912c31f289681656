package app

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v45/github"
)

// Version is set at compile time
var Version = "dev"

const (
	Owner = "tcping-ru"
	Repo  = "tcping"
)

// PrintUsage prints how tcping should be run
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Использование: tcping <хост> [порт]")
	fmt.Fprintln(w, "Примеры:")
	fmt.Fprintln(w, "  tcping example.ru       # Проверка порта 80")
	fmt.Fprintln(w, "  tcping example.ru 443   # Проверка порта 443")

	fs, _ := newFlagSet()
	fmt.Fprintln(w, "\nФлаги:")
	fmt.Fprint(w, fs.FlagUsages())
}

// PrintVersion displays the version
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "TCPing версия %s\n", Version)
}

func compareVersions(v1, v2 string) int {
	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	for i := range min(len(parts1), len(parts2)) {
		n1, _ := strconv.Atoi(parts1[i])
		n2, _ := strconv.Atoi(parts2[i])

		if n1 < n2 {
			return -1
		}
		if n1 > n2 {
			return 1
		}
	}

	// for cases in which version numbers differ in length
	switch {
	case len(parts1) < len(parts2):
		return -1
	case len(parts1) > len(parts2):
		return 1
	}

	return 0
}

var releaseTag = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)$`)

// updateMessage compares the running version with the latest release tag.
func updateMessage(current, latestTag string) (string, error) {
	latest := releaseTag.FindStringSubmatch(latestTag)
	if len(latest) == 0 {
		return "", fmt.Errorf("version name does not match expected format: %s", latestTag)
	}

	switch compareVersions(current, latest[1]) {
	case -1:
		return fmt.Sprintf("Доступна новая версия %s\nЗагрузить: https://github.com/%s/%s/releases/tag/%s",
			latest[1], Owner, Repo, latestTag), nil
	case 1:
		return fmt.Sprintf("Текущая версия %s новее последнего выпуска %s", current, latest[1]), nil
	default:
		return fmt.Sprintf("Установлена последняя версия: %s", current), nil
	}
}

// CheckForUpdates asks GitHub for the latest release and describes how it
// relates to the running version.
func CheckForUpdates(ctx context.Context, c *github.Client) (string, error) {
	if c == nil {
		c = github.NewClient(nil)
	}

	// unauthenticated requests from the same IP are limited to 60 per hour
	release, _, err := c.Repositories.GetLatestRelease(ctx, Owner, Repo)
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}

	return updateMessage(Version, release.GetTagName())
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/creativeprojects/mailwatch/term"
	"github.com/spf13/cobra"
)

const (
	releaseOwner   = "creativeprojects"
	releaseProject = "mailwatch"
	checksumsFile  = "checksums.txt"
	detectTimeout  = 30 * time.Second
)

var ErrDevelopmentBuild = errors.New("development build cannot be updated")

var selfUpdateCmd = &cobra.Command{
	Use:   "selfupdate",
	Short: "Download newest release from Github and update",
	RunE:  runSelfUpdate,
}

var checkOnly bool

func init() {
	selfUpdateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check if a newer version is available")
	rootCmd.AddCommand(selfUpdateCmd)
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	if err := updatableVersion(appVersion); err != nil {
		return err
	}
	if global.verbose {
		selfupdate.SetLogger(log.Default())
	}
	// only filters return an error
	updater, _ := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: checksumsFile},
	})

	latest, err := detectLatest(cmd.Context(), updater)
	if err != nil {
		return err
	}
	if latest.LessOrEqual(appVersion) {
		term.Infof("mailwatch %s is the latest version", appVersion)
		return nil
	}
	if checkOnly {
		term.Infof("mailwatch %s is available (current version is %s)", latest.Version(), appVersion)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := updater.UpdateTo(cmd.Context(), latest, exe); err != nil {
		return fmt.Errorf("unable to update binary: %w", err)
	}
	term.Infof("mailwatch updated to version %s", latest.Version())
	return nil
}

// updatableVersion returns an error when the binary was not built from a release
func updatableVersion(version string) error {
	if version == "" || strings.HasSuffix(version, "-dev") {
		return ErrDevelopmentBuild
	}
	return nil
}

func detectLatest(ctx context.Context, updater *selfupdate.Updater) (*selfupdate.Release, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.NewRepositorySlug(releaseOwner, releaseProject))
	if err != nil {
		return nil, fmt.Errorf("unable to detect latest version: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no release of %s for %s/%s", releaseProject, runtime.GOOS, runtime.GOARCH)
	}
	return latest, nil
}

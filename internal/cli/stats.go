package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/infra/logger"
	"github.com/aalvaropc/contrastly/internal/usecase"
)

// openURL is swapped in tests.
var openURL = open.Run

func statsCmd() *cobra.Command {
	var workspace string
	var repo string
	var openPage bool
	var format string

	c := &cobra.Command{
		Use:   "stats",
		Short: "Show stars and forks of the project repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			if repo == "" {
				repo = ws.cfg.Repo.Name
			}

			stats, ferr := usecase.NewFetchRepoStats(ws.stats).Execute(cmd.Context(), repo)
			if ferr != nil {
				logger.L().Warn("stats.fetch.failed", "repo", repo, "error", ferr.Error())
			}

			if err := printStats(cmd.OutOrStdout(), repo, stats, ferr, format); err != nil {
				return err
			}
			if ferr != nil {
				return ferr
			}

			if openPage {
				url := stats.HTMLURL
				if url == "" {
					url = "https://github.com/" + repo
				}
				if err := openURL(url); err != nil {
					return fmt.Errorf("open %s: %w", url, err)
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&repo, "repo", "r", "", "Repository as owner/name (default from config)")
	c.Flags().BoolVarP(&openPage, "open", "o", false, "Open the repository page in a browser")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

// printStats falls back to "Error" labels when the fetch failed.
func printStats(w io.Writer, repo string, s domain.RepoStats, fetchErr error, format string) error {
	if format == formatJSON {
		out := map[string]any{"repo": repo}
		if fetchErr != nil {
			out["error"] = fetchErr.Error()
		} else {
			out["stars"] = s.Stars
			out["forks"] = s.Forks
			out["html_url"] = s.HTMLURL
		}
		return writeJSON(w, out)
	}

	stars, forks := "Error", "Error"
	if fetchErr == nil {
		stars, forks = strconv.Itoa(s.Stars), strconv.Itoa(s.Forks)
	}
	fmt.Fprintf(w, "Repository: %s\n", repo)
	fmt.Fprintf(w, "Stars:      %s\n", stars)
	fmt.Fprintf(w, "Forks:      %s\n", forks)
	if s.HTMLURL != "" {
		fmt.Fprintf(w, "URL:        %s\n", s.HTMLURL)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/wowpub/internal/doctor"
	"github.com/conn-castle/wowpub/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			projectDir, err := resolveProjectDir(project)
			if err != nil {
				return err
			}
			sys := newSystem()

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, projectDir)

			configResult, cfg := doctor.CheckConfig(sys, projectDir)
			rootResult, installRoot := doctor.CheckInstallRoot(sys, projectDir)
			results := []doctor.Result{configResult, rootResult}
			if installRoot != "" {
				results = append(results, doctor.CheckDestinations(installRoot))
			}
			results = append(results, doctor.CheckMirror(cfg.Publish.Mirror))
			if workDir, err := cfg.ExpandWorkDir(); err == nil {
				results = append(results, doctor.CheckWorkDir(workDir, projectDir, installRoot))
			}

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", messages.FlagProject)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/logstat/internal/analyzer"
	"github.com/livp123/logstat/internal/render"
	"github.com/livp123/logstat/internal/utils/logger"
	apperrors "github.com/livp123/logstat/pkg/errors"
)

var (
	outputFormat string
	filterExpr   string
	strictMode   bool
	quiet        bool
	logLevel     string
	logFile      string
)

var RootCmd = &cobra.Command{
	Use:   "logstat <file>",
	Short: "Summarize a JSON log file by message type",
	// Short: 按消息类型汇总 JSON 日志文件
	Long: `logstat reads a text file where each line is a JSON object carrying a
"type" field, groups the lines by that field and reports the accumulated
byte size per type as a table on stdout.

Line sizes count the raw bytes of each line, excluding the terminator.
Malformed lines are skipped with a warning on stderr and never abort the
run; use --strict to turn skipped lines into a non-zero exit.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Assemble logging config from flags; config files are out of scope
		// 从命令行参数组装日志配置
		level := logLevel
		if quiet {
			level = "error"
		}
		logger.Init(logger.LoggingConfig{
			Level: level,
			Path:  logFile,
		})

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := render.New(outputFormat)
		if err != nil {
			return err
		}

		res, err := analyzer.Run(cmd.Context(), analyzer.Options{
			Path:   args[0],
			Filter: filterExpr,
		})
		if err != nil {
			return err
		}

		if err := renderer.Render(cmd.OutOrStdout(), res.Tally); err != nil {
			return err
		}

		if strictMode && res.Malformed > 0 {
			return apperrors.NewStrictError(res.Malformed)
		}
		return nil
	},
}

func init() {
	RootCmd.Flags().StringVarP(&outputFormat, "output", "o", render.FormatTable, "Output format: table, json or yaml")
	RootCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", `Boolean expression selecting lines to count (e.g. 'Type == "Foo"')`)
	RootCmd.Flags().BoolVar(&strictMode, "strict", false, "Exit non-zero if any line was skipped as malformed")

	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-line warnings")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Diagnostic log level: debug, info, warn or error")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write diagnostics to a rotating file instead of stderr")
}

func Execute() {
	defer logger.Sync()

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

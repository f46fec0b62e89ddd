package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Backseating-Committee-2k/ast-node-generator-for-seatbelt2/codegen/cpp"
	"github.com/Backseating-Committee-2k/ast-node-generator-for-seatbelt2/config"
	"github.com/Backseating-Committee-2k/ast-node-generator-for-seatbelt2/dsl"
	"github.com/Backseating-Committee-2k/ast-node-generator-for-seatbelt2/runlog"
)

var (
	flagOutput    string
	flagNamespace string
	flagForce     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <description file>",
	Short: "Generate C++ from a generator description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if flagOutput != "" {
			cfg.Output = flagOutput
		}
		if flagNamespace != "" {
			cfg.Namespace = flagNamespace
		}
		if flagForce {
			cfg.Force = true
		}
		return generate(args[0], cfg)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default: source with .hpp extension)")
	generateCmd.Flags().StringVarP(&flagNamespace, "namespace", "n", "", "wrap generated declarations in a namespace")
	generateCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "regenerate even if the source is unchanged")
	rootCmd.AddCommand(generateCmd)
}

func generate(sourcePath string, cfg config.Config) error {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", sourcePath, err)
	}

	outputPath := cfg.Output
	if outputPath == "" {
		outputPath = replaceExtension(sourcePath, ".hpp")
	}

	var history *runlog.Log
	if cfg.RunLog != "" {
		history, err = runlog.Open(cfg.RunLog)
		if err != nil {
			return err
		}
		defer history.Close()
	}

	hash := runlog.HashSource(source)
	if history != nil && !cfg.Force {
		unchanged, err := history.Unchanged(sourcePath, hash)
		if err != nil {
			return err
		}
		if unchanged {
			log.Info().Str("source", sourcePath).Msg("source unchanged, skipping (use --force to regenerate)")
			return nil
		}
	}

	desc, parseErr := dsl.ParseSource(string(source))
	if parseErr != nil {
		if history != nil {
			if _, err := recordRun(history, sourcePath, hash, outputPath, parseErr); err != nil {
				log.Warn().Err(err).Msg("failed to record run")
			}
		}
		return fmt.Errorf("%s: %w", sourcePath, parseErr)
	}

	generated := cpp.Generate(desc, cpp.Options{Namespace: cfg.Namespace})
	if err := os.WriteFile(outputPath, []byte(generated), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if history != nil {
		run, err := recordRun(history, sourcePath, hash, outputPath, nil)
		if err != nil {
			log.Warn().Err(err).Msg("failed to record run")
		} else {
			log.Debug().Str("run", run.ID).Msg("run recorded")
		}
	}

	log.Info().
		Str("source", sourcePath).
		Str("output", outputPath).
		Int("abstract_types", len(desc.AbstractTypes)).
		Msg("generated")
	return nil
}

func recordRun(history *runlog.Log, sourcePath, hash, outputPath string, parseErr error) (runlog.Run, error) {
	run := runlog.Run{
		SourcePath: sourcePath,
		SourceHash: hash,
		OutputPath: outputPath,
		OK:         parseErr == nil,
	}
	if parseErr != nil {
		run.Diagnostic = parseErr.Error()
	}
	return history.Record(run)
}

func replaceExtension(path, ext string) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		return path[:i] + ext
	}
	return path + ext
}

// Package main provides the CLI entrypoint for speechdrill.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/speechdrill/internal/config"
	"github.com/verte-zerg/speechdrill/internal/logging"
	"github.com/verte-zerg/speechdrill/internal/model"
	"github.com/verte-zerg/speechdrill/internal/session"
	"github.com/verte-zerg/speechdrill/internal/store"
	"github.com/verte-zerg/speechdrill/internal/tui"
	"github.com/verte-zerg/speechdrill/internal/wordlist"
)

const defaultSeedWords = 10

var (
	practiceSeconds int
	gameSeconds     int
	wordsFile       string
	seedSound       string
	seedCount       int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "speechdrill",
		Short:         "Speech therapy device simulator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDeviceCmd,
	}

	rootCmd.Flags().IntVar(&practiceSeconds, "practice-secs", session.DefaultSeconds, "practice drill length in seconds (min 5)")
	rootCmd.Flags().IntVar(&gameSeconds, "game-secs", session.DefaultSeconds, "game drill length in seconds (min 30)")
	rootCmd.Flags().StringVar(&wordsFile, "words-file", "", "word file used to seed the word-recall list")
	rootCmd.Flags().StringVar(&seedSound, "sound", "", "only seed words containing this sound")
	rootCmd.Flags().IntVar(&seedCount, "seed-count", defaultSeedWords, "number of words to seed")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSoundsCmd())
	rootCmd.AddCommand(newPatientsCmd())
	rootCmd.AddCommand(newFeedbackCmd())
	rootCmd.AddCommand(newPressesCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

// settings are the file and environment configuration shared by commands.
type settings struct {
	env   config.Env
	paths config.Paths
	file  config.FileConfig
}

func loadSettings() (settings, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return settings{}, err
	}
	paths := e.ResolvePaths()
	fileCfg, err := config.LoadConfig(paths.Config)
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	return settings{env: e, paths: paths, file: fileCfg}, nil
}

func runDeviceCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("speechdrill needs an interactive terminal")
	}
	s, err := loadSettings()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "practice-secs", &practiceSeconds, s.file.Practice.Seconds)
	applyIntConfig(cmd, "game-secs", &gameSeconds, s.file.Game.Seconds)
	applyStringConfig(cmd, "words-file", &wordsFile, s.file.Articulation.WordsFile)

	if err := validateFlags(); err != nil {
		return err
	}

	logger, err := logging.New(s.paths.Log, s.env.ResolveLogLevel(s.file))
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if serr := logger.Sync(); serr != nil {
			// Best-effort flush on exit.
			_ = serr
		}
	}()

	cfg := model.Config{
		PracticeSeconds: strconv.Itoa(practiceSeconds),
		GameSeconds:     strconv.Itoa(gameSeconds),
		Sounds:          s.file.Sounds(),
	}
	if wordsFile != "" {
		words, err := wordlist.LoadWords(wordsFile)
		if err != nil {
			return fmt.Errorf("failed to load words file %s: %w", wordsFile, err)
		}
		cfg.SeedWords = wordlist.Suggest(words, seedSound, seedCount, newRand())
		if len(cfg.SeedWords) == 0 {
			logErrf("no words in %s match %q; word recall starts empty\n", wordsFile, seedSound)
		}
	}

	st, err := store.Open(s.paths.DB)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	logger.Info("starting device",
		zap.String("db", s.paths.DB),
		zap.String("practice_seconds", cfg.PracticeSeconds),
		zap.String("game_seconds", cfg.GameSeconds),
		zap.Int("seed_words", len(cfg.SeedWords)),
	)
	app := tui.NewModel(cfg, st, logger)
	defer app.Close()
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func validateFlags() error {
	if practiceSeconds < 0 {
		return fmt.Errorf("--practice-secs must be >= 0")
	}
	if gameSeconds < 0 {
		return fmt.Errorf("--game-secs must be >= 0")
	}
	if seedCount <= 0 {
		return fmt.Errorf("--seed-count must be > 0")
	}
	return nil
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	path := e.ResolvePaths().Config
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# speechdrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# seconds = %d            # Practice drill length (minimum %d)

[game]
# seconds = %d            # Game drill length (minimum %d)

[articulation]
# sounds = [%s]
# words-file = ""         # Word file used to seed word recall

[log]
# level = "info"          # debug, info, warn, error
`,
		session.DefaultSeconds, session.PracticeFloor,
		session.DefaultSeconds, session.GameFloor,
		quoteAll(config.DefaultSounds),
	)
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mep-tools/bracket-tool/internal/adapter"
	"github.com/mep-tools/bracket-tool/internal/logger"
)

const (
	keyServer   = "server"
	keyToken    = "token"
	keyTimeout  = "timeout"
	keyLogLevel = "log-level"

	envPrefix      = "BRACKETCTL"
	configBaseName = ".bracketctl"

	defaultServer   = "http://localhost:8000/api"
	defaultTimeout  = 60 * time.Second
	defaultLogLevel = "warn"
)

type clientFactory func(baseURL string, timeout time.Duration, logger *logger.Logger) (adapter.APIClient, error)

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	in  io.Reader
	out io.Writer

	v          *viper.Viper
	configFile string

	newClient clientFactory
	client    adapter.APIClient
	logger    *logger.Logger
}

func newCLI(in io.Reader, out io.Writer) *cli {
	return &cli{
		in:        in,
		out:       out,
		v:         viper.New(),
		newClient: adapter.NewHTTPClient,
		logger:    logger.NewCLILogger("bracketctl"),
	}
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracketctl",
		Short: "Command line client for the MEP trapeze bracket tool",
		Long: `bracketctl talks to a bracket tool server over its HTTP API.

Settings are read from flags, then BRACKETCTL_* environment variables, then
$HOME/.bracketctl.yaml. "bracketctl login" stores the access token there.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	cmd.SetOut(c.out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default $HOME/.bracketctl.yaml)")
	flags.String(keyServer, defaultServer, "API base URL, including the /api prefix if the proxy uses one")
	flags.String(keyToken, "", "bearer token, overrides the stored one")
	flags.Duration(keyTimeout, defaultTimeout, "request timeout")
	flags.String(keyLogLevel, defaultLogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.healthCmd(),
		c.importCmd(),
		c.libraryCmd(),
		c.projectCmd(),
		c.checkCmd(),
		c.pdfCmd(),
		c.revisionsCmd(),
		c.versionCmd(),
	)

	return cmd
}

// setup resolves configuration and builds the API client.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := c.loadConfig(cmd); err != nil {
		return err
	}

	if err := logger.SetLevel(c.v.GetString(keyLogLevel)); err != nil {
		return err
	}

	client, err := c.newClient(c.v.GetString(keyServer), c.v.GetDuration(keyTimeout), c.logger)
	if err != nil {
		return err
	}
	client.SetToken(c.v.GetString(keyToken))
	c.client = client

	c.logger.Debug().
		Str("server", c.v.GetString(keyServer)).
		Str("config", c.v.ConfigFileUsed()).
		Msg("client configured")

	return nil
}

func (c *cli) loadConfig(cmd *cobra.Command) error {
	v := c.v

	v.SetConfigType("yaml")
	if c.configFile != "" {
		v.SetConfigFile(c.configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configBaseName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{keyServer, keyToken, keyTimeout, keyLogLevel} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}

	return nil
}

// configPath is where the token gets persisted.
func (c *cli) configPath() (string, error) {
	if used := c.v.ConfigFileUsed(); used != "" {
		return used, nil
	}
	if c.configFile != "" {
		return c.configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, configBaseName+".yaml"), nil
}

// saveToken writes token into the config file, keeping any other keys the
// file already holds.
func (c *cli) saveToken(token string) (string, error) {
	path, err := c.configPath()
	if err != nil {
		return "", err
	}

	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType("yaml")
	if err = file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("error reading config: %w", err)
	}

	file.Set(keyToken, token)
	if err = file.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("error writing config: %w", err)
	}

	if err = os.Chmod(path, 0o600); err != nil {
		return "", err
	}

	return path, nil
}

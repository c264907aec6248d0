// Package cli binds command-line options to cobra flags and viper so that
// every flag can also be set from an environment variable.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Opt is a single command-line option
type Opt struct {
	DestP   interface{} // pointer to the destination
	Flag    string
	Default interface{}
	Desc    string
	Short   rune // single-letter shorthand; zero means none

	// Persistent registers the flag on the command's persistent flag set, so
	// subcommands inherit it.
	Persistent bool
}

// NewOpt creates a new command line option.
func NewOpt(destP interface{}, flag string, dflt interface{}, desc string) Opt {
	return Opt{
		DestP:   destP,
		Flag:    flag,
		Default: dflt,
		Desc:    desc,
	}
}

// NewViper returns a viper instance that reads environment variables named
// after the upper-cased program name, with "-" normalized to "_":
// flag "log-level" of program "semantic" reads SEMANTIC_LOG_LEVEL.
func NewViper(name string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(name))
	v.AutomaticEnv()
	// This normalizes "-" to an underscore in env names.
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

// BindOptions adds opts to the specified command and automatically
// registers those options with viper.
//
// Each destination is preloaded from viper, so an environment variable acts
// as the default and an explicit flag still wins when the command parses.
func BindOptions(v *viper.Viper, cmd *cobra.Command, opts []Opt) error {
	for _, o := range opts {
		flags := cmd.Flags()
		if o.Persistent {
			flags = cmd.PersistentFlags()
		}
		var short string
		if o.Short != 0 {
			short = string(o.Short)
		}

		switch destP := o.DestP.(type) {
		case *string:
			var d string
			if o.Default != nil {
				d = o.Default.(string)
			}
			flags.StringVarP(destP, o.Flag, short, d, o.Desc)
			if err := bindPFlag(v, o.Flag, flags); err != nil {
				return err
			}
			*destP = v.GetString(o.Flag)
		case *int:
			var d int
			if o.Default != nil {
				d = o.Default.(int)
			}
			flags.IntVarP(destP, o.Flag, short, d, o.Desc)
			if err := bindPFlag(v, o.Flag, flags); err != nil {
				return err
			}
			*destP = v.GetInt(o.Flag)
		case *bool:
			var d bool
			if o.Default != nil {
				d = o.Default.(bool)
			}
			flags.BoolVarP(destP, o.Flag, short, d, o.Desc)
			if err := bindPFlag(v, o.Flag, flags); err != nil {
				return err
			}
			*destP = v.GetBool(o.Flag)
		case *[]string:
			var d []string
			if o.Default != nil {
				d = o.Default.([]string)
			}
			flags.StringSliceVarP(destP, o.Flag, short, d, o.Desc)
			if err := bindPFlag(v, o.Flag, flags); err != nil {
				return err
			}
			*destP = v.GetStringSlice(o.Flag)
		case *zapcore.Level:
			var d zapcore.Level
			if o.Default != nil {
				d = o.Default.(zapcore.Level)
			}
			LevelVarP(flags, destP, o.Flag, short, d, o.Desc)
			if err := bindPFlag(v, o.Flag, flags); err != nil {
				return err
			}
			if s := v.GetString(o.Flag); s != "" {
				if err := (*levelValue)(destP).Set(s); err != nil {
					return fmt.Errorf("%s: %w", o.Flag, err)
				}
			}
		case pflag.Value:
			if o.Default != nil {
				if err := destP.Set(fmt.Sprint(o.Default)); err != nil {
					return fmt.Errorf("%s: %w", o.Flag, err)
				}
			}
			flags.VarP(destP, o.Flag, short, o.Desc)
			if err := bindPFlag(v, o.Flag, flags); err != nil {
				return err
			}
			if s := v.GetString(o.Flag); s != "" {
				if err := destP.Set(s); err != nil {
					return fmt.Errorf("%s: %w", o.Flag, err)
				}
			}
		default:
			return fmt.Errorf("unknown destination type %T for flag %q", o.DestP, o.Flag)
		}
	}
	return nil
}

func bindPFlag(v *viper.Viper, key string, flags *pflag.FlagSet) error {
	return v.BindPFlag(key, flags.Lookup(key))
}

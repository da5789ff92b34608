package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bind ties a flag to a config key. It panics on a nil flag, which only a
// misspelt flag name in this package can produce.
func bind(v *viper.Viper, f *pflag.Flag, key string) {
	if f == nil {
		panic("cmd: bind called with nil flag for key " + key)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic("cmd: binding flag for key " + key + ": " + err.Error())
	}
}

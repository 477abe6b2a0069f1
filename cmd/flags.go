package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
)

// bindFlag maps a command-line flag onto a config key so flags win over the
// config file and environment.
func bindFlag(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

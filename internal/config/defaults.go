package config

import "github.com/spf13/viper"

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "test")
	v.SetDefault("debug", false)
	v.SetDefault("hosting", "standalone")
	v.SetDefault("show_header", true)
	v.SetDefault("methods_file", "")
	v.SetDefault("receipt_file", "")

	v.SetDefault("localization.tables_dir", "")
	v.SetDefault("localization.table_name", "")
	v.SetDefault("localization.key_separator", "")

	v.SetDefault("phone.min_digits", 0)
	v.SetDefault("phone.max_digits", 0)

	v.SetDefault("payment.value", 0)
	v.SetDefault("payment.currency", "")
	v.SetDefault("payment.country_code", "")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "payform")
	v.SetDefault("metrics.subsystem", "analytics")
}

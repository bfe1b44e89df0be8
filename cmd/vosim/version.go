package main

var buildVersion = "0.1.0"

func init() {
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate("vosim {{.Version}}\n")
}

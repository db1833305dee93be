/*
Package config loads digrank settings from YAML files. Settings present in a
file override the built-in defaults, while command line flags in turn override
the file settings.

	workers: 16
	qps: 50
	timeout: 2s
	lang: zh-CN
	native: true
	nameservers:
	  - 1.1.1.1
	  - 223.5.5.5
*/
package config

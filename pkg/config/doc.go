// Package config loads the printer configuration.
//
// Values are layered, each layer overriding the one before:
//
//  1. the embedded defaults.toml
//  2. the user config file (--config, SHARPRINTER_CONFIG or the XDG
//     config location)
//  3. SHARPRINTER_ environment variables, where a double underscore
//     separates sections: SHARPRINTER_PRINTER__PAGE_WIDTH=48
package config

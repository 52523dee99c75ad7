package config

// LoadSettings exposes loadSettings to the external test package.
var LoadSettings = loadSettings

package config

// Base application details
const AppName = "strand"
const ConfigDirName = "strand"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "strand.log"

// Editing defaults
const DefaultTabWidth = 4
const DefaultHistoryDepth = 100
const DefaultSystemClipboard = false

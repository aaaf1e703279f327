package config

// Base application details
const AppName = "editbox"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "editbox.log"
const Version = "0.1.0"

// UI Layout
const StatusBarHeight = 1

// Editor behavior
const DefaultDoubleClickTime = 0.5 // Seconds; matches core.DoubleClickTime
const DefaultHistoryLimit = 0      // Unlimited
const SystemClipboard = true

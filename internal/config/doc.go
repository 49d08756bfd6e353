// Package config loads the JSON configuration file holding the catalog API
// credentials (app_id, app_key) and client settings. A missing or malformed
// file is a fatal startup error; nothing in this package reaches the network.
package config

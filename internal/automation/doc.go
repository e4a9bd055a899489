// Package automation prepares requests for the NovaFlux automation API and
// lists the quick-action prompts bundled with the starter playground.
// Nothing here performs network I/O; Build only assembles the request so it
// can be previewed or handed to another tool.
package automation

// Package app provides the application logic behind the gosuslugi-grabber commands.
// It drives the registry client, prints the results as JSON or YAML
// and saves the raw license workbooks when asked to.
package app

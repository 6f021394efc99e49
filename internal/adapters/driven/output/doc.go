// Package output provides PortfolioSink implementations that serialise the
// portfolio document as indented JSON to the console or to a file.
package output

// Package platform contains OS integration glue: revealing downloaded files
// in the host file browser and locating the working directory.
package platform

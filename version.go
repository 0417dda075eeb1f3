// Package gzmsgs holds build metadata shared by the gzmsgs tool and the
// generated message packages.
package gzmsgs

// Version is the release of the message registry and conversion framework.
const Version = "11.0.0"

//go:build vectordebug

package vector

const debug = true

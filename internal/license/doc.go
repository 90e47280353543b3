// Package license holds the SPDX license registry: loading the license
// dataset, rendering copyright headers, and refreshing the dataset from the
// official SPDX license list.
package license

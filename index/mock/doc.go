// Package mock provides test doubles for the index package.
package mock

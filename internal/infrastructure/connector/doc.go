// Package connector implements adapters for external services. The Google
// Calendar connector answers free/busy queries and books consultation events
// on the studio's calendar.
package connector

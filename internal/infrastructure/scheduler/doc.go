// Package scheduler runs periodic maintenance jobs of the API process on
// cron specs.
package scheduler

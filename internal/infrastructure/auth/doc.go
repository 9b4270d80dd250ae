// Package auth verifies bearer tokens issued by the Auth0 tenant and turns
// them into a Principal. The principal's Subject is the profile id.
package auth

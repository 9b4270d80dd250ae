// Package profiles models a prospective member and the onboarding pipeline
// they move through, from sign-up to active membership.
package profiles

// Package app implements the application services: sign-up and review of
// profiles, agreement signing, consultation availability and booking. The
// services coordinate repositories, the calendar connector and transactions;
// business rules live in the domain packages.
package app

// Package identity implements the Identity aggregate and the role model
// behind the platform's access control: staff flag, the Manager and
// DeliveryCrew groups, and the Caller value that the authentication
// boundary resolves for each request.
package identity

// Package clientip extracts the real client IP address from HTTP requests.
//
// Headers are checked in this order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Invalid values and 0.0.0.0 are skipped. Results are normalized with
// net.IP.String, so IPv4-mapped IPv6 addresses come back as IPv4.
//
//	ip := clientip.GetIP(r)
//	ctx := clientip.WithIP(r.Context(), ip)
//
// The contact form rate limiter keys on the stored address.
package clientip

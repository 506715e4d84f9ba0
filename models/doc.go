// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request, and response types shared by
the reviews API.

# Visibility

Review carries two private fields that never serialize: ClientID (the
opaque browser identity a review belongs to) and DeleteToken (the bearer
credential returned exactly once, in the creation response). List and
read paths use ReviewSummary, which has no private fields at all.

# Wire format

Field names follow the public API: timestamps are unix seconds under
"ts", captcha challenges travel as "captcha_id"/"captcha_answer", and
errors use the envelope {"error": "<short message>"}.
*/
package models

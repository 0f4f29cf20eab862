// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import "time"

func ToSecondsDuration(secs int64) time.Duration {
	return time.Duration(secs) * time.Second
}

func ToDaysDuration(days int64) time.Duration {
	return time.Duration(days) * time.Hour * 24
}

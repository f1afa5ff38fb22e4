// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging of generator throughput.

Tests are included to ensure proper functionality.

## Feature Overview

- Maintains cumulative totals between each logging interval
  - Total number of generated values
  - Total number of generated bytes
- Logs the interval totals along with the byte rate every 10 seconds
- Maintains overall totals for a final summary
- Safe for concurrent use by multiple workers
*/
package progresslog

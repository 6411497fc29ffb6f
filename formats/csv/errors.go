// SPDX-License-Identifier: EPL-2.0

package csv

import "errors"

var ErrNilWriter = errors.New("csv: nil writer")

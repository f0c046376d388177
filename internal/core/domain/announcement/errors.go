package announcement

import "errors"

var ErrAnnouncementDoesNotExist = errors.New("announcement does not exist")

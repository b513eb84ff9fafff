package twx

import "net/url"

func urlPathEscape(v string) string {
	return url.PathEscape(v)
}

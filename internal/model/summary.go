package model

import "strconv"

// LastCheck последняя проверка адреса для списка.
type LastCheck struct {
	StatusCode int
	Date       string
}

// URLSummary строка списка адресов. LastCheck равен nil, если проверок не было.
type URLSummary struct {
	ID        int64
	Name      string
	LastCheck *LastCheck
}

// StatusCode код последней проверки или пустая строка.
func (s URLSummary) StatusCode() string {
	if s.LastCheck == nil {
		return ""
	}
	return strconv.Itoa(s.LastCheck.StatusCode)
}

// LastCheckDate дата последней проверки или пустая строка.
func (s URLSummary) LastCheckDate() string {
	if s.LastCheck == nil {
		return ""
	}
	return s.LastCheck.Date
}

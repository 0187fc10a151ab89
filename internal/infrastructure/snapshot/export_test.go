package snapshot

func (s *Store) CachedFilters() int {
	return s.filterCache.ItemCount()
}

package system

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"time"
)

// userDB maps uids to user names from a passwd file. The table is reloaded
// only when the file's modification time changes.
type userDB struct {
	path string

	mu      sync.Mutex
	modTime time.Time
	names   map[string]string
}

func newUserDB(path string) *userDB {
	return &userDB{path: path}
}

func (r *Reader) UserName(uid string) string {
	if uid == "" {
		return ""
	}

	name, err := r.users.lookup(uid)
	if err != nil {
		r.log.Debug("failed to read passwd", "path", r.users.path, "error", err.Error())
	}
	return name
}

func (db *userDB) lookup(uid string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	info, err := os.Stat(db.path)
	if err != nil {
		return "", err
	}

	if db.names == nil || !info.ModTime().Equal(db.modTime) {
		names, err := parsePasswd(db.path)
		if err != nil {
			return "", err
		}
		db.names = names
		db.modTime = info.ModTime()
	}

	return db.names[uid], nil
}

// parsePasswd reads name:password:uid:... lines. The first entry for a uid
// wins.
func parsePasswd(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		if _, ok := names[fields[2]]; !ok {
			names[fields[2]] = fields[0]
		}
	}

	return names, scanner.Err()
}

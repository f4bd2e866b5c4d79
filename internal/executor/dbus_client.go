package executor

import (
	"github.com/godbus/dbus/v5"
)

// DBusClient defines the interface for D-Bus operations.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/orbitalview/wallpaper/internal/executor DBusClient
type DBusClient interface {
	// Call invokes method on the object at path owned by dest
	// dest: The bus name (e.g., "org.kde.plasmashell")
	// path: The object path (e.g., "/PlasmaShell")
	// method: The fully qualified method (e.g., "org.kde.PlasmaShell.evaluateScript")
	Call(dest, path, method string, args ...any) error
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client on the shared session bus
// connection, which stays open for the life of the process
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Call invokes a method and waits for the reply
func (c *StdDBusClient) Call(dest, path, method string, args ...any) error {
	obj := c.conn.Object(dest, dbus.ObjectPath(path))
	return obj.Call(method, 0, args...).Err
}

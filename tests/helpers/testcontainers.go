// Helpers for integration tests that need a real database. A MySQL container
// is started through testcontainers and torn down with the test.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mysqlImage    = "mysql:8.4"
	mysqlDatabase = "jobtrackd_test"
	mysqlUser     = "jobtrackd"
	mysqlPassword = "jobtrackd-test-pw"
	mysqlRootPW   = "root-test-pw"
)

// MySQLContainer holds a running MySQL test container and its reachable
// address.
type MySQLContainer struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
}

// Terminate stops and removes the container.
func (m *MySQLContainer) Terminate(t *testing.T) {
	t.Helper()
	if m.Container != nil {
		if err := m.Container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate MySQL container: %v", err)
		}
	}
}

// DockerAvailable reports whether a Docker daemon is reachable. Integration
// tests skip when it is not.
func DockerAvailable() bool {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err = cli.Ping(ctx)
	return err == nil
}

// StartMySQL launches a MySQL container and waits until the server accepts
// connections.
func StartMySQL(t *testing.T) *MySQLContainer {
	t.Helper()
	ctx := context.Background()

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create MySQL port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mysqlImage,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": mysqlRootPW,
				"MYSQL_DATABASE":      mysqlDatabase,
				"MYSQL_USER":          mysqlUser,
				"MYSQL_PASSWORD":      mysqlPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MySQL container: %v", err)
	}

	mc := &MySQLContainer{
		Container: container,
		Database:  mysqlDatabase,
		User:      mysqlUser,
		Password:  mysqlPassword,
	}

	mc.Host, err = container.Host(ctx)
	if err != nil {
		mc.Terminate(t)
		t.Fatalf("Failed to resolve MySQL host: %v", err)
	}

	mappedPort, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		mc.Terminate(t)
		t.Fatalf("Failed to resolve MySQL port: %v", err)
	}
	mc.Port = mappedPort.Port()

	if err := mc.waitReady(); err != nil {
		mc.Terminate(t)
		t.Fatalf("MySQL not ready: %v", err)
	}

	return mc
}

// waitReady pings through the driver until the server really answers.
// Listening-port readiness can precede InnoDB being up.
func (m *MySQLContainer) waitReady() error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", m.User, m.Password, m.Host, m.Port, m.Database)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("mysql not ready after 30 seconds: %w", err)
}

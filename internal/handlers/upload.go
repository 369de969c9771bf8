package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	appConfig "github.com/kelseaconrad19/avian-eye-sight/internal/config"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/utils"
)

// -- Helpers -- //

func getS3Client() (*s3.Client, error) {
	cfg := appConfig.AppConfig
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

// -- Handlers -- //

// UploadPhoto handles multipart photo uploads to R2 and returns the public URL.
func UploadPhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		file, header, err = c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid file field found"})
			return
		}
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("%s/%s%s", c.DefaultQuery("folder", "uploads"), utils.GenerateID(), ext)

	client, err := getS3Client()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to init storage client"})
		return
	}

	cfg := appConfig.AppConfig
	_, err = client.PutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(cfg.R2BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(header.Header.Get("Content-Type")),
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed: " + err.Error()})
		return
	}

	publicURL := cfg.R2PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.r2.dev", cfg.R2BucketName)
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      fmt.Sprintf("%s/%s", publicURL, key),
		"key":      key,
		"mimetype": header.Header.Get("Content-Type"),
		"size":     header.Size,
	})
}

// Wrappers for well-known folders

func UploadSightingPhoto(c *gin.Context) {
	c.Request.URL.RawQuery = "folder=sightings"
	UploadPhoto(c)
}

func UploadOverlayPhoto(c *gin.Context) {
	c.Request.URL.RawQuery = "folder=overlays"
	UploadPhoto(c)
}
